// internal/codegen/runtime.go
package codegen

// The runtime fragments below are emitted verbatim into every generated
// program, ahead of the per-component code. They are plain ES5-compatible
// script, not modules, so the output runs from a file:// URL as well as a
// dev server.

// signalStoreJS is the keyed signal store. create() is idempotent: a repeat
// call for an existing key returns the live cell without resetting its
// value. Writes notify subscribers synchronously; a subscriber that writes
// the same signal re-enters updateAll before the outer write returns.
const signalStoreJS = `  var MTM = window.MTM = window.MTM || {};
  MTM.store = MTM.store || (function () {
    var cells = {};
    function create(key, initial) {
      if (Object.prototype.hasOwnProperty.call(cells, key)) {
        return cells[key];
      }
      var current = initial;
      var subs = [];
      cells[key] = {
        get value() { return current; },
        set value(next) {
          current = next;
          for (var i = 0; i < subs.length; i++) { subs[i](next); }
        },
        subscribe: function (fn) { subs.push(fn); }
      };
      return cells[key];
    }
    return { create: create, cells: cells };
  })();
`

// conditionInterpreterJS walks the expression AST the compiler embedded for
// each {#if} condition. Unknown identifiers are rejected, never treated as
// undefined.
const conditionInterpreterJS = `  MTM.evalCondition = function (node, lookup) {
    function truthy(v) { return !!v; }
    function ev(n) {
      switch (n.op) {
        case 'lit': return n.value;
        case 'ident': {
          var found = lookup(n.name);
          if (!found.ok) { throw new Error('unknown identifier "' + n.name + '" in condition'); }
          return found.value;
        }
        case 'not': return !truthy(ev(n.expr));
        case 'bin':
          switch (n.sym) {
            case '&&': return truthy(ev(n.left)) && truthy(ev(n.right));
            case '||': return truthy(ev(n.left)) || truthy(ev(n.right));
            case '==': return ev(n.left) === ev(n.right);
            case '!=': return ev(n.left) !== ev(n.right);
            case '<':  return ev(n.left) <  ev(n.right);
            case '<=': return ev(n.left) <= ev(n.right);
            case '>':  return ev(n.left) >  ev(n.right);
            case '>=': return ev(n.left) >= ev(n.right);
          }
      }
      throw new Error('malformed condition node');
    }
    return truthy(ev(node));
  };
`

// routerJS intercepts same-origin anchor clicks, drives pushState/popstate,
// and dispatches mtm:navigate events. The metadata binder listens for those
// events and keeps document.title/description in sync with MTM.routeMeta.
const routerJS = `  MTM.router = MTM.router || (function () {
    function navigate(path, push) {
      if (push !== false) { history.pushState({}, '', path); }
      document.dispatchEvent(new CustomEvent('mtm:navigate', { detail: { path: path } }));
    }
    function onClick(e) {
      var node = e.target;
      while (node && node.tagName !== 'A') { node = node.parentElement; }
      if (!node) { return; }
      if (node.target === '_blank' || node.hasAttribute('download') || node.hasAttribute('data-external')) { return; }
      if (node.origin && node.origin !== window.location.origin) { return; }
      var href = node.getAttribute('href');
      if (!href || href.charAt(0) === '#') { return; }
      e.preventDefault();
      navigate(node.pathname);
    }
    function start() {
      document.addEventListener('click', onClick);
      window.addEventListener('popstate', function () {
        navigate(window.location.pathname, false);
      });
    }
    return { start: start, navigate: navigate };
  })();
  MTM.routeMeta = MTM.routeMeta || {};
  document.addEventListener('mtm:navigate', function (e) {
    var meta = MTM.routeMeta[e.detail.path];
    if (!meta) { return; }
    if (meta.title) { document.title = meta.title; }
    if (meta.description) {
      var tag = document.querySelector('meta[name="description"]');
      if (tag) { tag.setAttribute('content', meta.description); }
    }
  });
`

// binderJS holds the update cycle. updateAll re-renders every data-bind
// element and re-evaluates every data-if condition from the current signal
// values. Reactive signals subscribe updateAll, so a handler that writes a
// signal during updateAll re-enters it synchronously — writes from inside
// the update cycle are forbidden by convention.
const binderJS = `  function lookupVar(name) {
    if (Object.prototype.hasOwnProperty.call(vars, name)) {
      return { ok: true, value: vars[name].value };
    }
    return { ok: false };
  }

  function updateAll() {
    var binds = document.querySelectorAll('[data-bind]');
    for (var i = 0; i < binds.length; i++) {
      var el = binds[i];
      var name = el.getAttribute('data-bind').replace(/^\$/, '');
      var cell = vars[name];
      if (cell) { el.textContent = String(cell.value); }
    }
    var guards = document.querySelectorAll('[data-if]');
    for (var j = 0; j < guards.length; j++) {
      var guard = guards[j];
      var compiled = conditionIndex[guard.getAttribute('data-if')];
      var show = false;
      if (compiled && compiled.ast) {
        try {
          show = MTM.evalCondition(compiled.ast, lookupVar);
        } catch (err) {
          console.warn('[mtm] ' + err.message);
        }
      }
      guard.style.display = show ? '' : 'none';
    }
  }

  function wireEvents(root) {
    var all = root.querySelectorAll('*');
    for (var i = 0; i < all.length; i++) {
      var el = all[i];
      for (var j = 0; j < el.attributes.length; j++) {
        var attr = el.attributes[j];
        var type = null;
        if (attr.name === 'data-click') { type = 'click'; }
        else if (attr.name.indexOf('data-event-') === 0) { type = attr.name.slice('data-event-'.length); }
        if (!type) { continue; }
        var handler = handlers[attr.value.replace(/^\$/, '')];
        if (handler) { el.addEventListener(type, handler); }
      }
    }
  }

  function mountComponents(root) {
    var hosts = root.querySelectorAll('[data-component]');
    for (var i = 0; i < hosts.length; i++) {
      var host = hosts[i];
      var mountFn = mounts[host.getAttribute('data-component')];
      if (!mountFn) { continue; }
      var raw = host.getAttribute('data-props');
      mountFn(host, raw ? JSON.parse(raw) : {});
    }
  }
`
