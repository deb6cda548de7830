package browser

// Every script is a function taking JSON-encoded arguments. Element
// references are objects {selector, index} or {scratch}; scratch elements
// are excluded from selector matches.
const resolveRef = `function resolve(ref) {
    if (ref.scratch) {
      return document.querySelector('[data-stylecheck-scratch="' + ref.scratch + '"]');
    }
    var nodes = Array.prototype.filter.call(document.querySelectorAll(ref.selector), function (n) {
      return !n.hasAttribute('data-stylecheck-scratch');
    });
    return nodes[ref.index] || null;
  }`

const queryAllScript = `function queryAll(selector) {
  var nodes = document.querySelectorAll(selector);
  var out = [];
  for (var i = 0; i < nodes.length; i++) {
    var el = nodes[i];
    if (el.hasAttribute('data-stylecheck-scratch')) continue;
    out.push({
      tag: el.tagName.toLowerCase(),
      classes: Array.prototype.slice.call(el.classList),
      id: el.id || '',
      text: el.innerText || el.textContent || ''
    });
  }
  return out;
}`

const computedStyleScript = `function computedStyle(ref) {
  ` + resolveRef + `
  var el = resolve(ref);
  if (!el) return null;
  var cs = window.getComputedStyle(el);
  var out = {};
  for (var i = 0; i < cs.length; i++) {
    out[cs[i]] = cs.getPropertyValue(cs[i]);
  }
  ['margin', 'padding', 'border-width', 'border-style', 'border-color', 'border-radius'].forEach(function (k) {
    out[k] = cs.getPropertyValue(k);
  });
  return out;
}`

const boundingRectScript = `function boundingRect(ref) {
  ` + resolveRef + `
  var el = resolve(ref);
  if (!el) return null;
  var r = el.getBoundingClientRect();
  return {top: r.top, left: r.left, width: r.width, height: r.height, bottom: r.bottom, right: r.right};
}`

const viewportWidthScript = `function viewportWidth() {
  return window.innerWidth;
}`

const insertScratchScript = `function insertScratch(ref, id) {
  ` + resolveRef + `
  var el = resolve(ref);
  if (!el || !el.parentNode) return null;
  var scratch = document.createElement(el.tagName);
  scratch.setAttribute('data-stylecheck-scratch', id);
  el.parentNode.insertBefore(scratch, el.nextSibling);
  return {
    tag: scratch.tagName.toLowerCase(),
    classes: [],
    id: '',
    text: ''
  };
}`

const removeScratchScript = `function removeScratch(id) {
  var el = document.querySelector('[data-stylecheck-scratch="' + id + '"]');
  if (!el) return false;
  el.parentNode.removeChild(el);
  return true;
}`
